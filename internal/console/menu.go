package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
)

// Menu shows the numbered action list and runs one flow at a time.
type Menu struct {
	term    *Terminal
	actions []form.Action
	out     io.Writer
	logger  *slog.Logger
}

func NewMenu(term *Terminal, actions []form.Action, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{term: term, actions: actions, out: term.out, logger: logger}
}

// Run loops until the user picks 0, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.render()

		choice, err := m.term.readLine(ctx, "Opção")
		if errors.Is(err, form.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			fmt.Fprintln(m.out, "Até logo!")
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(m.actions) {
			fmt.Fprintf(m.out, "Opção inválida: %q\n", choice)
			continue
		}

		action := m.actions[n-1]
		if err := action.Run(ctx); err != nil {
			// the flow has already told the user
			m.logger.Debug("flow ended", "action", action.Label, "error", err)
		}
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.out, "\nSelecione uma ação:")
	for i, a := range m.actions {
		if i == 4 {
			fmt.Fprintln(m.out, "--- Busca ---")
		}
		fmt.Fprintf(m.out, "%d. %s\n", i+1, a.Label)
	}
	fmt.Fprintln(m.out, "0. Sair")
}
