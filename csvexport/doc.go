// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package csvexport serializes survey responses as semicolon-delimited CSV.

# Format

	Date;Role;Score;Likes;DailyHelp;ProblemsSolved;ImprovementSuggestions
	10/18/2026, 2:03:12 PM;dev;9;"fast, simple";;;

Rows are joined with "\n" and the output has no trailing newline.

# Quoting

Free-text fields (role, like, help, problems, improve) go through Quote:
embedded double quotes are doubled and the field is wrapped in quotes if
it contains a comma, a double quote, or a newline. A semicolon alone does
not trigger quoting even though it is the delimiter, and the date and
score columns are never quoted. Consumers that split on ';' must be
aware of both.

# Headers

Header labels follow the survey locale ("en" or "pt-BR"), or a custom
set from the survey file:

	s := csvexport.NewSerializer(csvexport.LocalePTBR, nil)
	text := s.Serialize(responses)
*/
package csvexport
