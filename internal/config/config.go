// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // секунды; защита от скачков после сворачивания окна
	GridCellSize = 20

	EnemyRadius      = 8.0
	TowerRadius      = 15.0
	ProjectileRadius = 4.0
	PathStrokeWidth  = 4.0
	RangeStrokeWidth = 2.0

	HUDX        = 10
	HUDY        = 10
	HUDPadding  = 10
	TextScale   = 1.0
	ClickRadius = 20.0

	BackButtonX = 710
	BackButtonY = 10
	BackButtonW = 80
	BackButtonH = 40

	ReadyButtonW = 220
	ReadyButtonH = 64

	GameOverFlashHalfPeriod = 0.3 // секунды
	GameOverFlashRepeats    = 6
	ReadyPulsePeriod        = 1.2 // секунды, полный цикл
	ReadyPulseScale         = 0.05
)

var (
	MenuBackgroundColor  = color.RGBA{0x1a, 0x3a, 0x1a, 255}
	BackgroundColor      = color.RGBA{0x2d, 0x50, 0x16, 255}
	GridColor            = color.RGBA{0x44, 0x44, 0x44, 128}
	PathColor            = color.RGBA{255, 255, 0, 204}
	EnemyColor           = color.RGBA{255, 0, 0, 255}
	TowerColor           = color.RGBA{0, 0x99, 255, 255}
	RangeColor           = color.RGBA{0, 255, 0, 128}
	ProjectileColor      = color.RGBA{255, 255, 0, 255}
	TextLightColor       = color.RGBA{255, 255, 255, 255}
	TextDarkColor        = color.RGBA{0, 0, 0, 255}
	TitleColor           = color.RGBA{0, 255, 0, 255}
	HUDBackgroundColor   = color.RGBA{0, 0, 0, 255}
	StartButtonColor     = color.RGBA{0, 255, 0, 255}
	BackButtonColor      = color.RGBA{255, 0, 0, 255}
	ReadyButtonColor     = color.RGBA{0, 0, 0, 255}
	LevelCompleteOverlay = color.RGBA{0, 255, 0, 178}
	GameOverOverlay      = color.RGBA{255, 0, 0, 255}
	PauseOverlay         = color.RGBA{0, 0, 0, 128}
)
