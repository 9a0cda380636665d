package bot

import (
	"context"
	"strings"

	"currencybot/internal/convert"
)

// Dispatcher routes incoming chat messages to the currency command, either
// through an explicit prefixed command or the passive conversion rule.
type Dispatcher struct {
	command     *CurrencyCommand
	aliases     map[string]struct{}
	prefix      string
	autoConvert bool
}

// NewDispatcher creates a dispatcher for the given command. prefix marks
// explicit commands (e.g. "."); autoConvert enables the passive rule that
// answers ordinary messages matching the query grammar.
func NewDispatcher(command *CurrencyCommand, prefix string, autoConvert bool) *Dispatcher {
	aliases := make(map[string]struct{})
	for _, a := range command.Aliases() {
		aliases[a] = struct{}{}
	}
	return &Dispatcher{
		command:     command,
		aliases:     aliases,
		prefix:      prefix,
		autoConvert: autoConvert,
	}
}

// HandleMessage returns the reply for a message and whether it triggered one.
// Explicit commands always produce a reply; the passive rule only fires on a
// full grammar match and never replies otherwise.
func (d *Dispatcher) HandleMessage(ctx context.Context, text string) (string, bool) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, d.prefix) {
		name, arg, _ := strings.Cut(strings.TrimPrefix(text, d.prefix), " ")
		if _, ok := d.aliases[strings.ToLower(name)]; ok {
			return d.command.Execute(ctx, strings.TrimSpace(arg)), true
		}
	}

	if d.autoConvert && convert.MatchesQuery(text) {
		return d.command.Execute(ctx, text), true
	}

	return "", false
}
