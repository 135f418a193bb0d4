package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-max-file-size override for the file-encryption size gate, in bytes
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var maxFileSizeBytes int64

	flag.StringVar(&databaseDSN, "d", "", "Database DSN (SQLite file path)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", 0, "Override for the file-encryption size gate, in bytes")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Crypto: Crypto{
			MaxFileSizeBytes: maxFileSizeBytes,
		},
		JSONFilePath: jsonConfigPath,
	}
}
