/*
Package config holds the configuration of a rename run.

	            +-------------+
	            |   Config    |
	            | (rules +    |
	            |  files)     |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+ +---+--+   +----+---+ +---+---+
	|Default| | YAML |   |  JSON  | |  HCL  |
	+------+ +------+   +--------+ +-------+

🎯 Purpose:
  - Default returns the built-in table rename migration
  - Load reads an alternative mapping and file list from a file
  - Env applies TABLERENAME_* overrides

⚡ Validate runs before any file is touched. It rejects absolute or escaping
target paths, duplicate targets, and mappings whose output could be matched
again by any rule (see text.SimpleTextReplacer.ValidateRules).

🔍 Example:

	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(ctx, path)
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
