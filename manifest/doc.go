// Package manifest defines the document that drives webconf: the files to
// patch, how logical keys map to XML entries in each file, and named presets
// of key/value assignments.
//
// A manifest is JSON or YAML:
//
//	{
//	  "files": [
//	    {
//	      "file": "Web.config",
//	      "config": {
//	        "dbHost": {"key": "Main", "type": "connectionString"},
//	        "mode":   {"key": "Mode", "type": "appSetting"}
//	      }
//	    }
//	  ],
//	  "presets": {
//	    "local": {"dbHost": "Server=localhost", "mode": "debug"}
//	  }
//	}
//
// Mapping order is significant. [Values] and [Presets] keep the order in
// which keys appear in the document or on the command line.
package manifest
