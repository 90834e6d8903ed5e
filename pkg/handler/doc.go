// Package handler reads the installer settings and runs each config entry
// through its processor.
//
// The settings value may be a single mapping or a list of mappings:
//
//	"extra": {
//	    "dist-installer-params": [
//	        {"file": "config/app.ini", "env-map": {"DB_HOST": "APP_DB_HOST"}},
//	        {"file": "config/cache.json", "type": "json"}
//	    ]
//	}
//
// One processor instance is kept per type for the whole run.
package handler
