/*
Package config manages configuration loading and validation for unitytweak.

	            +-------------+
	            |   Config    |
	            | (defaults)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+
	                   |
	            +------+------+
	            | UNITYTWEAK_ |
	            |  env / .env |
	            +-------------+

🎯 Purpose:
- Holds the project paths and rewrite literals
- Every field has a default, so running with no file needs no setup
- Files only need to name what they change

🔄 Flow:
 1. Start from Default()
 2. Decode the config file (if any) over the defaults, rejecting unknown fields
 3. Apply UNITYTWEAK_* environment overrides
 4. Validate and clean paths

🔍 Example (YAML):

	project: ../MyGame
	textures:
	  root: Assets/Art
	  replacements:
	    - old: "crunchedCompression: 0"
	      new: "crunchedCompression: 1"
	    - old: "maxTextureSize: 2048"
	      new: "maxTextureSize: 1024"
	  ignore_patterns:
	    - "UI/**"
	stripping:
	  level: 2
	continue_on_error: true

🔍 Example (HCL):

	project = "../MyGame"

	textures {
	  root = "Assets/Art"

	  replacement {
	    old = "crunchedCompression: 0"
	    new = "crunchedCompression: 1"
	  }
	}

	stripping {
	  platforms = ["Android", "iPhone", "Standalone"]
	}
*/
package config
