// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: file, sqlite, postgres, or memory (default: file)
  - DatabaseURL: slot directory, SQLite path, or PostgreSQL URL
    (defaults: "data" for file, "data/nps.db" for sqlite; required for postgres)
  - StorageKey: key of the response slot (default: ksa_nps_responses_v1)
  - Locale: en or pt-BR; picks CSV headers and timestamp format (default: en)
  - AdminKeySalt: enables X-Admin-Key checks on export and clear (optional)
  - RecentLimit: rows in the recent-responses table (default: 20)
  - SurveyFile: optional YAML file with export filename and CSV header

# CLI Flags

	-p            Server port
	-t            Store type
	-d            Store location
	-k            Storage key
	-locale       Survey locale
	-recent       Recent responses limit
	-survey-file  YAML survey file
	-env-file     Dotenv file (default: .env, ignored if missing)
	-admin-salt   Admin key salt

# Environment Variables

Flags fall back to environment variables, which may come from the dotenv
file. Variables already set in the process win over the file.

	PORT           → -p
	STORE_TYPE     → -t
	DATABASE_URL   → -d
	STORAGE_KEY    → -k
	SURVEY_LOCALE  → -locale
	RECENT_LIMIT   → -recent
	SURVEY_FILE    → -survey-file
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables, and both over the
survey file.

# Survey File

	locale: pt-BR
	recent_limit: 50
	export_filename: respostas.csv
	csv_header: [Data, Papel, Nota, Gosta, Ajuda, Problemas, Melhorar]

csv_header must list exactly seven labels.
*/
package cliparse
