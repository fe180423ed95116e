package office

import "context"

// Repository stores office records and enforces natural-key uniqueness and
// referential integrity. Every call is a single attempt.
type Repository interface {
	// -------- Client --------
	AddClient(
		ctx context.Context,
		client Client,
	) error

	FindClientByCPF(
		ctx context.Context,
		cpf string,
	) (*Client, error)

	// -------- Case --------
	AddCase(
		ctx context.Context,
		c Case,
	) error

	FindCaseByNumber(
		ctx context.Context,
		number string,
	) (*Case, error)

	// -------- Payment --------
	AddPayment(
		ctx context.Context,
		payment Payment,
	) error

	FindPaymentsByClientCPF(
		ctx context.Context,
		cpf string,
	) ([]Payment, error)

	// -------- Hearing --------

	// AddHearing ignores any ClientCPF supplied by the caller and returns
	// the stored hearing with the client resolved from its case.
	AddHearing(
		ctx context.Context,
		hearing Hearing,
	) (*Hearing, error)

	FindHearingsByCaseNumber(
		ctx context.Context,
		number string,
	) ([]Hearing, error)
}
