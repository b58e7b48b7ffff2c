package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Klikphone SAV portal",
    "description": "Terminal portal in front of the repair-shop backend",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {
      "get": {
        "summary": "Health check",
        "tags": [
          "health"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/": {
      "get": {
        "summary": "Landing view",
        "tags": [
          "public"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/session": {
      "get": {
        "summary": "Current session",
        "tags": [
          "auth"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/login/{role}": {
      "post": {
        "summary": "Staff login",
        "tags": [
          "auth"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "name": "role",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/logout": {
      "post": {
        "summary": "Logout",
        "tags": [
          "auth"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/suivi": {
      "get": {
        "summary": "Track a repair by code",
        "tags": [
          "tracking"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "Ticket code",
            "name": "ticket",
            "in": "query",
            "required": true
          }
        ]
      }
    },
    "/client": {
      "post": {
        "summary": "Customer intake",
        "tags": [
          "intake"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "201": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/client/catalog/categories": {
      "get": {
        "summary": "Device categories",
        "tags": [
          "intake"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/client/catalog/pannes": {
      "get": {
        "summary": "Fault types",
        "tags": [
          "intake"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/client/catalog/marques": {
      "get": {
        "summary": "Brands",
        "tags": [
          "intake"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "categorie",
            "in": "query",
            "required": false
          }
        ]
      }
    },
    "/client/catalog/modeles": {
      "get": {
        "summary": "Models",
        "tags": [
          "intake"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "categorie",
            "in": "query",
            "required": false
          },
          {
            "type": "string",
            "description": "",
            "name": "marque",
            "in": "query",
            "required": false
          }
        ]
      }
    },
    "/accueil": {
      "get": {
        "summary": "Staff dashboard",
        "tags": [
          "dashboard"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "search",
            "in": "query",
            "required": false
          },
          {
            "type": "string",
            "description": "",
            "name": "status",
            "in": "query",
            "required": false
          }
        ]
      }
    },
    "/accueil/ws": {
      "get": {
        "summary": "Dashboard websocket",
        "tags": [
          "dashboard"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/accueil/nav": {
      "get": {
        "summary": "Navigation items",
        "tags": [
          "dashboard"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/accueil/ticket/{id}": {
      "get": {
        "summary": "Ticket detail",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          }
        ]
      },
      "patch": {
        "summary": "Save ticket edits",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      },
      "delete": {
        "summary": "Delete a ticket",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          }
        ]
      }
    },
    "/accueil/ticket/{id}/status": {
      "patch": {
        "summary": "Change ticket status",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/accueil/ticket/{id}/note": {
      "post": {
        "summary": "Append an internal note",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/accueil/ticket/{id}/history": {
      "post": {
        "summary": "Append a history entry",
        "tags": [
          "tickets"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/accueil/tarifs": {
      "get": {
        "summary": "Repair price grid",
        "tags": [
          "tarifs"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "q",
            "in": "query",
            "required": false
          },
          {
            "type": "string",
            "description": "",
            "name": "marque",
            "in": "query",
            "required": false
          }
        ]
      },
      "delete": {
        "summary": "Clear the price list",
        "tags": [
          "tarifs"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/accueil/tarifs/update": {
      "post": {
        "summary": "Refresh supplier prices",
        "tags": [
          "tarifs"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "202": {
            "description": "OK"
          }
        }
      }
    },
    "/accueil/tarifs/import": {
      "post": {
        "summary": "Import a price list",
        "tags": [
          "tarifs"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/accueil/clients": {
      "get": {
        "summary": "List clients",
        "tags": [
          "clients"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "search",
            "in": "query",
            "required": false
          }
        ]
      }
    },
    "/accueil/clients/{id}": {
      "get": {
        "summary": "Client detail",
        "tags": [
          "clients"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          }
        ]
      },
      "patch": {
        "summary": "Update a client",
        "tags": [
          "clients"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      },
      "delete": {
        "summary": "Delete a client",
        "tags": [
          "clients"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          }
        ]
      }
    },
    "/accueil/pieces": {
      "get": {
        "summary": "List parts",
        "tags": [
          "parts"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "ticket_id",
            "in": "query",
            "required": false
          }
        ]
      },
      "post": {
        "summary": "Order a part",
        "tags": [
          "parts"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "201": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/accueil/pieces/{id}": {
      "patch": {
        "summary": "Update a part",
        "tags": [
          "parts"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          },
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      },
      "delete": {
        "summary": "Delete a part",
        "tags": [
          "parts"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "integer",
            "name": "id",
            "in": "path",
            "required": true
          }
        ]
      }
    },
    "/accueil/config": {
      "get": {
        "summary": "Shop settings",
        "tags": [
          "config"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      },
      "put": {
        "summary": "Update a setting",
        "tags": [
          "config"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "name": "body",
            "in": "body",
            "required": true,
            "schema": {
              "type": "object"
            }
          }
        ]
      }
    },
    "/tech": {
      "get": {
        "summary": "Technician dashboard",
        "tags": [
          "dashboard"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "search",
            "in": "query",
            "required": false
          },
          {
            "type": "string",
            "description": "",
            "name": "status",
            "in": "query",
            "required": false
          }
        ]
      }
    },
    "/tech/tarifs": {
      "get": {
        "summary": "Repair price grid",
        "tags": [
          "tarifs"
        ],
        "produces": [
          "application/json"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "type": "string",
            "description": "",
            "name": "q",
            "in": "query",
            "required": false
          },
          {
            "type": "string",
            "description": "",
            "name": "marque",
            "in": "query",
            "required": false
          }
        ]
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
