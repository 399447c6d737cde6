// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Each setting is resolved in order: CLI flag, environment variable, default.
Before the environment is read, the .env file named by -env-file or ENV_FILE
(default .env) is loaded with godotenv. A missing file is not an error, and
the file never overrides variables already present in the environment.

# Settings

	-p            PORT                 3001
	-max-message  MAX_MESSAGE_LENGTH   1000
	-max-carrier  MAX_CARRIER_LENGTH   100000
	-max-results  MAX_RESULTS          20
	-cache-size   ANALYSIS_CACHE_SIZE  256 (0 disables)
	-rate-limit   RATE_LIMIT           10 requests/second per client (0 disables)
	-rate-burst   RATE_BURST           20
	-fillers      FILLER_FILE          built-in pools
	-ip-salt      IP_HASH_SALT         random per process
	-env-file     ENV_FILE             .env

# Validation

ParseFlags returns an error for unparseable numbers, a port outside 1-65535,
non-positive length or result limits, a negative cache size or rate, and a
positive rate with no burst.
*/
package cliparse
