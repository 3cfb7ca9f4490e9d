package ports

// Prompter asks the operator for input on the terminal
type Prompter interface {
	// Confirm asks a yes/no question, defaulting to no
	Confirm(title, description string) (bool, error)
	// Input asks for a single line of text
	Input(title, placeholder string) (string, error)
}
