package push

import "context"

// Message es el contenido de una notificación push de recordatorio.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Sender entrega una notificación al dispositivo identificado por token.
type Sender interface {
	Send(ctx context.Context, token string, msg Message) error
}
