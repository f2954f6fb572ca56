/*
Package config loads and validates wordswap patch jobs.

	            +-------------+
	            |   Config    |
	            |  (Targets)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads a job file describing which files to patch and with which dictionary
- Resolves relative paths against the job file's directory
- Validates globs, encodings and dictionary keys up front

🔄 Flow:
1. Load picks a Parser by extension
2. The parser decodes the file into a Config
3. Relative root, destination and dictionary files are anchored to the file
4. Validate checks targets and the inline dictionary
5. BuildDictionary merges dictionary files, then the inline entries

🔍 Example:

	cfg, err := config.Load(ctx, ".wordswap.yaml")
	if err != nil {
		return err
	}

	dict, err := cfg.BuildDictionary(ctx)
	if err != nil {
		return err
	}

A YAML job:

	root: assets
	destination: out
	async: true
	dictionary:
	  first: changed
	dictionary_files:
	  - words.yaml
	targets:
	  - include: "localization/*.bytes"
	    encoding: utf16le
	    ignore:
	      - "vendor/**"
*/
package config
