// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads the optional YAML configuration the jdk-probe CLI
// consumes when scanning for installations.
//
// A configuration file looks like:
//
//	extra_roots:
//	  - ~/jdks
//	  - /opt/java
//	skip_well_known: false
//	timeout: 10s
//	output: json
//
// Paths in extra_roots may use "~" and $VAR placeholders; they are
// expanded at load time.
package config
