// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/security": {
            "get": {
                "description": "Returns metrics, threats, alerts or a combination. Unknown or missing type returns metrics with the first 5 threats and alerts.",
                "produces": ["application/json"],
                "tags": ["Security"],
                "summary": "Get security data",
                "parameters": [
                    {"type": "string", "description": "View: metrics, threats, alerts or all", "name": "type", "in": "query"},
                    {"type": "integer", "description": "Maximum threats or alerts returned (default: 10, ignored for all)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Security data; metrics returns security.Metrics, threats and alerts return lists", "schema": {"$ref": "#/definitions/security.Bundle"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Acknowledges scan, quarantine or resolve_alert. Nothing is executed and the dataset is unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Security"],
                "summary": "Perform security action",
                "parameters": [
                    {"description": "Action and its data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Action acknowledged", "schema": {"$ref": "#/definitions/dto.ActionResponseDTO"}},
                    "400": {"description": "Invalid action", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/security/modules": {
            "get": {
                "description": "Returns the protection modules shown on the dashboard in catalog order",
                "produces": ["application/json"],
                "tags": ["Security"],
                "summary": "List security modules",
                "responses": {
                    "200": {"description": "Security modules", "schema": {"type": "array", "items": {"$ref": "#/definitions/security.Module"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/setup/organization": {
            "post": {
                "description": "Validates the setup wizard submission and acknowledges it. Nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Setup"],
                "summary": "Validate organization setup",
                "parameters": [
                    {"description": "Organization details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.OrganizationSetupRequest"}}
                ],
                "responses": {
                    "200": {"description": "Setup validated", "schema": {"$ref": "#/definitions/dto.OrganizationSetupResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ActionRequest": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "example": "quarantine"},
                "data": {"type": "object"}
            }
        },
        "dto.ActionResponseDTO": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Security scan initiated"},
                "scanId": {"type": "string", "example": "scan_6f1c9a52-2d0b-4d8e-9a57-0c1f8e3b7a41"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.OrganizationSetupRequest": {
            "type": "object",
            "properties": {
                "complianceRequirements": {"type": "array", "items": {"type": "string"}},
                "domain": {"type": "string", "example": "acme.co.za"},
                "employeeCount": {"type": "string", "example": "11-50"},
                "industry": {"type": "string", "example": "finance"},
                "organizationName": {"type": "string", "example": "Acme Ltd"},
                "securityModules": {"$ref": "#/definitions/dto.SecurityModulesDTO"}
            }
        },
        "dto.OrganizationSetupResponse": {
            "type": "object",
            "properties": {
                "enabledModules": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string", "example": "Organization Acme Ltd validated successfully"},
                "setupId": {"type": "string", "example": "setup_0b7e4c1e-6a53-4f0e-8d1c-5d2b8e6f9a10"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.SecurityModulesDTO": {
            "type": "object",
            "properties": {
                "backupRecovery": {"type": "boolean"},
                "emailSecurity": {"type": "boolean"},
                "endpointProtection": {"type": "boolean"},
                "webSecurity": {"type": "boolean"}
            }
        },
        "security.Alert": {
            "type": "object",
            "properties": {
                "actionRequired": {"type": "boolean"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "module": {"type": "string"},
                "resolved": {"type": "boolean"},
                "severity": {"type": "string", "enum": ["info", "warning", "error", "critical"]},
                "timestamp": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "security.Bundle": {
            "type": "object",
            "properties": {
                "alerts": {"type": "array", "items": {"$ref": "#/definitions/security.Alert"}},
                "metrics": {"$ref": "#/definitions/security.Metrics"},
                "threats": {"type": "array", "items": {"$ref": "#/definitions/security.Threat"}}
            }
        },
        "security.Metrics": {
            "type": "object",
            "properties": {
                "activeProtections": {"type": "integer"},
                "complianceScore": {"type": "integer"},
                "devicesProtected": {"type": "integer"},
                "lastScanTime": {"type": "string"},
                "threatTrend": {"type": "string", "enum": ["increasing", "decreasing", "stable"]},
                "totalThreatsBlocked": {"type": "integer"}
            }
        },
        "security.Module": {
            "type": "object",
            "properties": {
                "blockedThreats": {"type": "integer"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "icon": {"type": "string"},
                "id": {"type": "string"},
                "lastScan": {"type": "string"},
                "name": {"type": "string"},
                "protectedDevices": {"type": "integer"},
                "status": {"type": "string", "enum": ["active", "inactive", "warning", "error"]},
                "threatLevel": {"type": "string", "enum": ["low", "medium", "high", "critical"]}
            }
        },
        "security.Threat": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "severity": {"type": "string", "enum": ["low", "medium", "high", "critical"]},
                "source": {"type": "string"},
                "status": {"type": "string", "enum": ["blocked", "quarantined", "investigating", "resolved"]},
                "target": {"type": "string"},
                "timestamp": {"type": "string"},
                "type": {"type": "string", "enum": ["malware", "phishing", "ransomware", "ddos", "intrusion"]}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "MSSP Security API",
	Description:      "Mock security telemetry and action acknowledgments for the MSSP dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
