package notifysettings

import "time"

// Settings son las preferencias de recordatorios de un usuario.
// Se reconcilian contra Defaults(): un usuario sin registro guardado
// obtiene los defaults, nunca un error.
type Settings struct {
	ID     string
	UserID string

	PushEnabled  bool
	ReminderHour int // hora local 0-23 a la que se agrupan los recordatorios

	WaterReminders bool
	FeedReminders  bool
	RepotReminders bool
	PruneReminders bool

	// Token del dispositivo para push (Expo). Vacío = sin dispositivo.
	ExpoPushToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Defaults es la configuración efectiva de un usuario nuevo.
func Defaults(userID string) Settings {
	return Settings{
		UserID:         userID,
		PushEnabled:    true,
		ReminderHour:   9,
		WaterReminders: true,
		FeedReminders:  true,
		RepotReminders: true,
		PruneReminders: true,
	}
}
