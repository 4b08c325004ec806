// Package configs provides embedded configuration files for the SUR application.
package configs

import _ "embed"

// DefaultConfigYAML contains the sur.yml template written by "sur init".
//
//go:embed default.yaml
var DefaultConfigYAML []byte
