// internal/ui/overlay.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/config"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/render"
)

const (
	flashAlphaHigh = 0.7
	flashAlphaLow  = 0.3
)

// PulseScale — масштаб кнопки READY в момент t: плавно от 1 до 1+ReadyPulseScale и обратно
func PulseScale(t float64) float64 {
	phase := 2 * math.Pi * t / config.ReadyPulsePeriod
	return 1 + config.ReadyPulseScale*(1-math.Cos(phase))/2
}

// FlashAlpha — прозрачность красного экрана поражения в момент t.
// Каждая вспышка идёт 0.7 -> 0.3 -> 0.7 за два полупериода; done после всех вспышек.
func FlashAlpha(t float64) (alpha float64, done bool) {
	half := config.GameOverFlashHalfPeriod
	total := 2 * half * config.GameOverFlashRepeats
	if t >= total {
		return flashAlphaHigh, true
	}
	if t < 0 {
		t = 0
	}
	pos := math.Mod(t, 2*half) / half // [0, 2)
	if pos > 1 {
		pos = 2 - pos
	}
	return utils.Lerp(flashAlphaHigh, flashAlphaLow, pos), false
}

// LevelCompleteOverlay — зелёный экран с кнопкой READY?
type LevelCompleteOverlay struct {
	Ready   *Button
	elapsed float64
}

func NewLevelCompleteOverlay() *LevelCompleteOverlay {
	return &LevelCompleteOverlay{
		Ready: NewButton(config.ScreenWidth/2, 360, config.ReadyButtonW, config.ReadyButtonH,
			"READY?", config.ReadyButtonColor, config.TitleColor),
	}
}

// Reset перезапускает анимацию
func (o *LevelCompleteOverlay) Reset() {
	o.elapsed = 0
}

func (o *LevelCompleteOverlay) Update(deltaTime float64) {
	o.elapsed += deltaTime
}

func (o *LevelCompleteOverlay) Draw(screen *ebiten.Image, hovered bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.LevelCompleteOverlay, false)
	render.DrawTextCentered(screen, "LEVEL COMPLETE!", config.ScreenWidth/2, 260, 5, config.TextDarkColor)
	o.Ready.Draw(screen, hovered, float32(PulseScale(o.elapsed)))
}

// GameOverOverlay — мигающий красный экран. Done сообщает, что мигание закончилось.
type GameOverOverlay struct {
	elapsed float64
}

func (o *GameOverOverlay) Reset() {
	o.elapsed = 0
}

func (o *GameOverOverlay) Update(deltaTime float64) {
	o.elapsed += deltaTime
}

func (o *GameOverOverlay) Done() bool {
	_, done := FlashAlpha(o.elapsed)
	return done
}

func (o *GameOverOverlay) Draw(screen *ebiten.Image) {
	alpha, _ := FlashAlpha(o.elapsed)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.WithAlpha(config.GameOverOverlay, alpha), false)
	render.DrawTextCentered(screen, "GAME OVER!", config.ScreenWidth/2, config.ScreenHeight/2, 6, config.TextDarkColor)
}

// DrawPauseOverlay затемняет экран и пишет PAUSED
func DrawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	render.DrawTextCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, 4, config.TextLightColor)
}
