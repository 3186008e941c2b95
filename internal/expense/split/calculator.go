package split

// ValidationResult is the form-friendly outcome of ValidateSplit
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Calculator is the entry point used by the expense workflow
type Calculator struct {
	factory *Factory
}

// NewCalculator creates a calculator backed by the given strategy factory
func NewCalculator(factory *Factory) *Calculator {
	if factory == nil {
		factory = NewSplitStrategyFactory()
	}
	return &Calculator{factory: factory}
}

// Validate returns the first problem with req, or nil
func (c *Calculator) Validate(req Request) error {
	if err := validateBase(req); err != nil {
		return err
	}
	strategy, err := c.factory.Create(req.Method)
	if err != nil {
		return err
	}
	return strategy.Validate(req)
}

// ValidateSplit never fails; problems are reported in the result
func (c *Calculator) ValidateSplit(req Request) ValidationResult {
	if err := c.Validate(req); err != nil {
		return ValidationResult{Valid: false, Error: err.Error()}
	}
	return ValidationResult{Valid: true}
}

// CalculateSplit returns the per-participant amounts, or a *SplitError
func (c *Calculator) CalculateSplit(req Request) (Result, error) {
	if err := validateBase(req); err != nil {
		return nil, err
	}
	strategy, err := c.factory.Create(req.Method)
	if err != nil {
		return nil, err
	}
	return strategy.Calculate(req)
}
