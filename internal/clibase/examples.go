// internal/clibase/examples.go
package clibase

// Examples shown by --help for each subcommand.
const (
	TranslateExamples = `  orfscan translate reads.fa
  zcat reads.fq.gz | orfscan translate --type dna -o jsonl -
  orfscan translate --genetic-code 11 --line-width 60 'runs/*.fa.gz'`

	ORFExamples = `  orfscan orfs --min-orf-length 20 reads.fa
  orfscan orfs --min-orf-length 30 --allow-open-orfs -o text --pretty reads.fa
  orfscan translate reads.fa | orfscan orfs --type aa --min-orf-length 20 -`

	ServeExamples = `  orfscan serve --addr 127.0.0.1:8080
  curl -s localhost:8080/orfs -d '{"min_orf_length":20,"records":[{"id":"r1","sequence":"ATGAAATAG"}]}'`
)
