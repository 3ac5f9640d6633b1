package dto

// StatementQueryParams defines query parameters for statement generation and export.
type StatementQueryParams struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Source string `form:"source" binding:"omitempty,oneof=transactions journal"`
	Format string `form:"format" binding:"omitempty,oneof=csv json"`
}
