/*
Package operation patches files on disk with a dictionary.

	+-------------+
	|   Config    |
	|  (Targets)  |
	+------+------+
	       |
	+------+------+
	|  Operation  |
	| patch/check |
	+------+------+
	       |
	+------+------+
	|  FileStore  |
	|   (disk)    |
	+-------------+

🎯 Purpose:
- Expands each target glob under the config root
- Runs the dictionary replacer over every matched file with the target's encoding
- Writes results in place or under a destination directory (patch)
- Reports what would change without writing (check)

🔄 Flow:
1. Glob the target include pattern, drop ignored files
2. Read each file through the FileStore
3. Replace words with text.DictionaryReplacer
4. Write changed files atomically and log a FileOperation per file

⚡ Notes:
- A file matched by several targets is handled by the first one only
- Files below the destination directory are never picked up as inputs
- With Async set, files of a target are processed in parallel

🔍 Example:

	op, err := operation.NewPatchOperation(operation.Options{
		Config:     cfg,
		Dictionary: dict,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if err := operation.NewRunner(zerolog.Ctx(ctx), false).Run(ctx, op); err != nil {
		return err
	}
	summary := operation.Summarize(op.Results())
*/
package operation
