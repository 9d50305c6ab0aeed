package ledger

// Prompts passed to the Confirmer for destructive operations.
const (
	PromptRemoveTransaction = "Deseja realmente excluir este lançamento?"
	PromptResetAll          = "ATENÇÃO: Isso apagará permanentemente todos os seus dados. Deseja continuar?"
	PromptReplaceState      = "Atenção: A importação substituirá todos os dados atuais. Deseja prosseguir?"
)

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

var (
	// AlwaysConfirm approves every prompt.
	AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

	// NeverConfirm declines every prompt.
	NeverConfirm Confirmer = ConfirmFunc(func(string) bool { return false })
)

func confirmed(c Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(prompt)
}
