/**
 * @description
 * This file serves the interactive API documentation. The OpenAPI document is
 * embedded in the binary and exposed only when the docs flag is enabled in
 * configuration, keeping the surface off in production by default.
 */

package api

import "net/http"

const openAPIDocument = `{
  "openapi": "3.0.3",
  "info": {
    "title": "payment-api",
    "description": "Bank cash-out submission and retrieval API.",
    "version": "1.0.0"
  },
  "paths": {
    "/payments/cashout": {
      "post": {
        "summary": "Submit a cash-out request",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/CashOutRequest"}
            }
          }
        },
        "responses": {
          "202": {"description": "Request accepted for processing"},
          "400": {"description": "Validation failure with field violations"}
        }
      }
    },
    "/payments/cashout/{transactionId}": {
      "get": {
        "summary": "Retrieve a cash-out record",
        "parameters": [
          {"name": "transactionId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {
            "description": "Stored cash-out record",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/CashOutRecord"}
              }
            }
          },
          "404": {"description": "No record for the transaction id"}
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Liveness and store readiness",
        "responses": {
          "200": {"description": "Store reachable"},
          "503": {"description": "Store unreachable"}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "BankAccount": {
        "type": "object",
        "required": ["bankCode", "agency", "accountNumber", "accountDigit", "accountType", "documentNumber", "accountHolderName"],
        "properties": {
          "bankCode": {"type": "string", "minLength": 3, "maxLength": 3},
          "agency": {"type": "string", "minLength": 4, "maxLength": 4},
          "agencyDigit": {"type": "string", "maxLength": 1},
          "accountNumber": {"type": "string", "minLength": 1},
          "accountDigit": {"type": "string", "minLength": 1, "maxLength": 1},
          "accountType": {"type": "string", "enum": ["CC", "CP"]},
          "documentNumber": {"type": "string"},
          "accountHolderName": {"type": "string", "minLength": 2}
        }
      },
      "CashOutRequest": {
        "type": "object",
        "required": ["transactionId", "sourceAccount", "destinationAccount", "amount", "paymentDate"],
        "properties": {
          "transactionId": {"type": "string"},
          "sourceAccount": {"$ref": "#/components/schemas/BankAccount"},
          "destinationAccount": {"$ref": "#/components/schemas/BankAccount"},
          "amount": {"type": "string", "description": "positive decimal"},
          "paymentDate": {"type": "string", "format": "date-time"}
        }
      },
      "CashOutRecord": {
        "allOf": [
          {"$ref": "#/components/schemas/CashOutRequest"},
          {
            "type": "object",
            "properties": {
              "createdAt": {"type": "string", "format": "date-time"},
              "status": {"type": "string", "enum": ["Pending"]}
            }
          }
        ]
      }
    }
  }
}`

const docsPage = `<!doctype html>
<html>
<head><title>payment-api docs</title></head>
<body>
<h1>payment-api</h1>
<p>The OpenAPI description of this service is available at
<a href="/docs/openapi.json">/docs/openapi.json</a>.</p>
</body>
</html>`

func openAPIDocumentHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(openAPIDocument))
}

func docsPageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsPage))
}
