package password

// Counter and toggle helpers backing the UI key bindings. They clamp to the
// engine bounds so interactive mutation can never build an out-of-range
// config.

// IncreaseLength bumps the length up to MaxLength.
func (c *Config) IncreaseLength() {
	if c.Length < MaxLength {
		c.Length++
	}
}

// DecreaseLength lowers the length down to MinLength.
func (c *Config) DecreaseLength() {
	if c.Length > MinLength {
		c.Length--
	}
}

// IncreaseCount bumps the batch size up to MaxCount.
func (c *Config) IncreaseCount() {
	if c.Count < MaxCount {
		c.Count++
	}
}

// DecreaseCount lowers the batch size down to MinCount.
func (c *Config) DecreaseCount() {
	if c.Count > MinCount {
		c.Count--
	}
}

// ToggleUppercase flips the uppercase class.
func (c *Config) ToggleUppercase() { c.Uppercase = !c.Uppercase }

// ToggleLowercase flips the lowercase class.
func (c *Config) ToggleLowercase() { c.Lowercase = !c.Lowercase }

// ToggleNumbers flips the digit class.
func (c *Config) ToggleNumbers() { c.Numbers = !c.Numbers }

// ToggleSymbols flips the symbol class.
func (c *Config) ToggleSymbols() { c.Symbols = !c.Symbols }

// ToggleAvoidSimilar flips exclusion of visually ambiguous glyphs.
func (c *Config) ToggleAvoidSimilar() { c.AvoidSimilar = !c.AvoidSimilar }

// ToggleAllowDuplicates flips whether a character may repeat.
func (c *Config) ToggleAllowDuplicates() { c.AllowDuplicates = !c.AllowDuplicates }

// ToggleAvoidSequential flips rejection of sequential runs.
func (c *Config) ToggleAvoidSequential() { c.AvoidSequential = !c.AvoidSequential }
