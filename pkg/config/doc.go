/*
Package config builds the explicit configuration value handed to the rewriter.

	            +-------------+
	            |   Config    |
	            |  (defaults) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | | (+ env)  |
	+----------+ +----------+ +----------+

🔄 Flow:
1. Start from the built-in defaults
2. Overlay the optional config file (format picked by extension)
3. Validate and normalise paths
4. Resolve the effective domain from the process environment and dotenv files

🌐 Resolution:
Sources are consulted in order and the first non-empty value wins. The
process environment is checked before dotenv files for every source, so a
variable set in the shell beats the same variable in .env, but never a
higher-priority source.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".domainrw.yaml", ".")
	if err != nil {
		return err
	}
	env, err := cfg.Environment(ctx)
	if err != nil {
		return err
	}
	domain := cfg.EffectiveDomain(env)
	fmt.Println(domain.Value, "from", domain.Source)
*/
package config
