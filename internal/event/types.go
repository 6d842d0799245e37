// internal/event/types.go
package event

const (
	StatsChanged    EventType = "StatsChanged"    // Изменились деньги, жизни, уровень или волна
	LevelStarted    EventType = "LevelStarted"    // Начат уровень, Data: номер уровня
	WaveStarted     EventType = "WaveStarted"     // Началась волна, Data: номер волны
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился, Data: ID
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг дошёл до конца пути, Data: ID
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, Data: *component.Enemy (уже удалён из хранилища)
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена, Data: ID
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила, Data: ID снаряда
	LevelCompleted  EventType = "LevelCompleted"  // Все волны уровня пройдены
	GameOver        EventType = "GameOver"        // Жизни кончились
)
