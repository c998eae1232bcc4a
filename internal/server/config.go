// Package server hosts OFC Pineapple rooms for external collaborators:
// configuration, the room registry, and the per-room serialised service
// entrypoints that transport and scheduling layers call into.
package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lttcmd/pineapple-app-sub000/internal/game"
)

// Config is the complete server configuration.
type Config struct {
	Server    ServerSettings   `hcl:"server,block"`
	Rules     RulesSettings    `hcl:"rules,block"`
	Royalties *RoyaltySettings `hcl:"royalties,block"`
}

// ServerSettings contains host-level knobs.
type ServerSettings struct {
	LogLevel       string `hcl:"log_level,optional"`
	TimerSweepMs   int    `hcl:"timer_sweep_ms,optional"`
	MaxRoomPlayers int    `hcl:"max_room_players,optional"`
}

// RulesSettings tunes scoring, chips and timers per room.
type RulesSettings struct {
	ScoopBonus    int `hcl:"scoop_bonus,optional"`
	PointsPerChip int `hcl:"points_per_chip,optional"`
	StartChips    int `hcl:"start_chips,optional"`
	WinThreshold  int `hcl:"win_threshold,optional"`

	InitialSetSeconds  int `hcl:"initial_set_seconds,optional"`
	RoundSeconds       int `hcl:"round_seconds,optional"`
	FantasylandSeconds int `hcl:"fantasyland_seconds,optional"`
	RevealSeconds      int `hcl:"reveal_seconds,optional"`
}

// RoyaltySettings overrides the 5-card row payout tables. Top-row payouts
// keep their standard per-rank schedule.
type RoyaltySettings struct {
	Bottom *RowPayoutSettings `hcl:"bottom,block"`
	Middle *RowPayoutSettings `hcl:"middle,block"`
}

// RowPayoutSettings is one row's payout override.
type RowPayoutSettings struct {
	Trips         int `hcl:"trips,optional"`
	Straight      int `hcl:"straight,optional"`
	Flush         int `hcl:"flush,optional"`
	FullHouse     int `hcl:"full_house,optional"`
	Quads         int `hcl:"quads,optional"`
	StraightFlush int `hcl:"straight_flush,optional"`
	RoyalFlush    int `hcl:"royal_flush,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	defaults := game.DefaultRules()
	return &Config{
		Server: ServerSettings{
			LogLevel:       "info",
			TimerSweepMs:   250,
			MaxRoomPlayers: 2,
		},
		Rules: RulesSettings{
			ScoopBonus:         defaults.ScoopBonus,
			PointsPerChip:      defaults.PointsPerChip,
			StartChips:         defaults.StartChips,
			WinThreshold:       defaults.WinThreshold,
			InitialSetSeconds:  int(defaults.InitialSetTimeout / time.Second),
			RoundSeconds:       int(defaults.RoundTimeout / time.Second),
			FantasylandSeconds: int(defaults.FantasylandTimeout / time.Second),
			RevealSeconds:      int(defaults.RevealTimeout / time.Second),
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to defaults
// when the file does not exist. Missing values take their defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(c *Config) {
	d := DefaultConfig()
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = d.Server.LogLevel
	}
	if c.Server.TimerSweepMs == 0 {
		c.Server.TimerSweepMs = d.Server.TimerSweepMs
	}
	if c.Server.MaxRoomPlayers == 0 {
		c.Server.MaxRoomPlayers = d.Server.MaxRoomPlayers
	}
	if c.Rules.ScoopBonus == 0 {
		c.Rules.ScoopBonus = d.Rules.ScoopBonus
	}
	if c.Rules.PointsPerChip == 0 {
		c.Rules.PointsPerChip = d.Rules.PointsPerChip
	}
	if c.Rules.StartChips == 0 {
		c.Rules.StartChips = d.Rules.StartChips
	}
	if c.Rules.WinThreshold == 0 {
		c.Rules.WinThreshold = d.Rules.WinThreshold
	}
	if c.Rules.InitialSetSeconds == 0 {
		c.Rules.InitialSetSeconds = d.Rules.InitialSetSeconds
	}
	if c.Rules.RoundSeconds == 0 {
		c.Rules.RoundSeconds = d.Rules.RoundSeconds
	}
	if c.Rules.FantasylandSeconds == 0 {
		c.Rules.FantasylandSeconds = d.Rules.FantasylandSeconds
	}
	if c.Rules.RevealSeconds == 0 {
		c.Rules.RevealSeconds = d.Rules.RevealSeconds
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Rules.PointsPerChip <= 0 {
		return fmt.Errorf("points_per_chip must be positive")
	}
	if c.Rules.StartChips <= 0 {
		return fmt.Errorf("start_chips must be positive")
	}
	if c.Rules.WinThreshold <= c.Rules.StartChips {
		return fmt.Errorf("win_threshold (%d) must exceed start_chips (%d)",
			c.Rules.WinThreshold, c.Rules.StartChips)
	}
	if c.Rules.ScoopBonus < 0 {
		return fmt.Errorf("scoop_bonus cannot be negative")
	}
	if c.Server.MaxRoomPlayers < 2 {
		return fmt.Errorf("max_room_players must be at least 2")
	}
	return nil
}

// GameRules builds the engine rules from this configuration.
func (c *Config) GameRules() *game.Rules {
	rules := game.DefaultRules()
	rules.ScoopBonus = c.Rules.ScoopBonus
	rules.PointsPerChip = c.Rules.PointsPerChip
	rules.StartChips = c.Rules.StartChips
	rules.WinThreshold = c.Rules.WinThreshold
	rules.InitialSetTimeout = time.Duration(c.Rules.InitialSetSeconds) * time.Second
	rules.RoundTimeout = time.Duration(c.Rules.RoundSeconds) * time.Second
	rules.FantasylandTimeout = time.Duration(c.Rules.FantasylandSeconds) * time.Second
	rules.RevealTimeout = time.Duration(c.Rules.RevealSeconds) * time.Second

	if c.Royalties != nil {
		if c.Royalties.Bottom != nil {
			rules.Royalties.Bottom = rowPayouts(c.Royalties.Bottom)
		}
		if c.Royalties.Middle != nil {
			rules.Royalties.Middle = rowPayouts(c.Royalties.Middle)
		}
	}
	return rules
}

func rowPayouts(s *RowPayoutSettings) game.RowPayouts {
	return game.RowPayouts{
		Trips:         s.Trips,
		Straight:      s.Straight,
		Flush:         s.Flush,
		FullHouse:     s.FullHouse,
		Quads:         s.Quads,
		StraightFlush: s.StraightFlush,
		RoyalFlush:    s.RoyalFlush,
	}
}

// SweepInterval returns the timer poll cadence.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Server.TimerSweepMs) * time.Millisecond
}
