package domain

import "strings"

// IncomingMessage é o recorte de um update do Telegram usado pelo roteador de comandos
type IncomingMessage struct {
	ChatID int64
	UserID int64
	Text   string
}

type Command struct {
	Name string
	Args []string
}

// ParseCommand separa o primeiro token (comando) dos argumentos.
// O sufixo "@nome_do_bot" que o Telegram adiciona em grupos é descartado.
func ParseCommand(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}
	}

	name := strings.ToLower(fields[0])
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}

	return Command{
		Name: name,
		Args: fields[1:],
	}
}
