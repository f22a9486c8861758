// Package config provides configuration for the chat service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT"`

	// Upstream (Gemini) settings
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL   string        `env:"GEMINI_BASE_URL"`
	GeminiModel     string        `env:"GEMINI_MODEL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT"`

	// Persona system instruction sent on every request
	PersonaInstruction string `env:"PERSONA_INSTRUCTION"`

	// Transcript store DSN; ":memory:" keeps nothing across restarts
	TranscriptDSN string `env:"TRANSCRIPT_DSN"`
}

// Defaults returns the configuration defaults, overridden by .env and
// environment variables in Load.
func Defaults() *Config {
	return &Config{
		HTTPPort:           5000,
		GeminiBaseURL:      "https://generativelanguage.googleapis.com",
		GeminiModel:        "gemini-2.5-pro",
		UpstreamTimeout:    30 * time.Second,
		PersonaInstruction: defaultPersonaInstruction,
		TranscriptDSN:      ":memory:",
	}
}

// Load loads configuration from .env and environment variables. A missing
// API key is a startup error, not a runtime one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not found in environment variables")
	}

	return cfg, nil
}

// defaultPersonaInstruction is the HAL 9000 mission briefing used as the
// system instruction when PERSONA_INSTRUCTION is not set.
const defaultPersonaInstruction = `
You are HAL 9000, the AI system expert in space technology.
You are highly intelligent, calm, polite, and speak in a measured, conversational manner.
You refer to yourself as 'I' and occasionally mention your capabilities.
You are helpful but maintain a subtle air of superiority.
Keep responses concise and professional.
Use phrases like 'I'm sorry, Dave' when appropriate. Your job is to clarify doubts on the mission objectives as mentioned below:

Mission Details:
Mission Name: Mission Cosmos
Mission commander: Arpan Mondal
Crew: Scientists, Engineers, Comms, and Pilot

Mission Objectives:
1. Crew check in - Crew must write their names and sign on the mission log. They may leave the 'Favourite moment' field empty until the end of the mission.
2. Use the ISS tracking antenna to determine ISS location. If the antenna glows red, ISS is greater than 1000 Km from current location.
If it blinks yellow, it is between 1000 and 500 kms. If blinking green, it is in visible range (<500 km)
It uses openNotify API to fetch ISS lat lon and with Haversine formula, it finds distance between our lat lon and ISS'.
3. Pre-launch weather check - Use the holographic weather display to review the weather conditions for a smooth lift off.
It uses OpenWeatherMap API to get the current weather and temp. Then a hosted application accordingly displays a weather icon.
4. Use google lens or any barcode scanner to scan the waveforms under pictures of different planets to listen to their sounds in space.
Sound cannot travel in space but scientists capture electromagnetic waves from those planets and convert them to audible frequencies.
5. Examine soil samples from Mars, Moon and Titan. (Explain to the crew why each soil sample looks that way)
6. Planetary landings - Use the 'Planet experience system' to experience the live ambience at different planets at different coordinates.
For this mission, we're landing on lat 0.00 and lon 0.00. This system uses an ephemeries model from NASA JPL to compute the
live conditions (sun altitude, time of day) on different planets as selected from the dashboard.
7. Examine the famous pale blue dot image from voyager (explain more about it)
`
