package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration adds "250ms"-style parsing, which yaml.v3 does not do for
// time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is everything the server binary needs. Zero-value fields take
// the defaults below; a YAML file overrides field by field.
type Config struct {
	GRPCAddr string `yaml:"grpc_addr"`

	EntryWALDir     string   `yaml:"entry_wal_dir"`
	SegmentSize     int64    `yaml:"segment_size"`
	SegmentDuration Duration `yaml:"segment_duration"`

	OutboxDir   string `yaml:"outbox_dir"`
	SnapshotDir string `yaml:"snapshot_dir"`

	Capacity     int `yaml:"capacity"`
	Lanes        int `yaml:"lanes"`
	AllocWidth   int `yaml:"alloc_width"`
	MergeWidth   int `yaml:"merge_width"`
	ReleaseWidth int `yaml:"release_width"`

	EngineTick       Duration `yaml:"engine_tick"`
	SnapshotInterval Duration `yaml:"snapshot_interval"`
	EpochInterval    Duration `yaml:"epoch_interval"`

	KafkaBrokers    []string `yaml:"kafka_brokers"`
	FragmentTopic   string   `yaml:"fragment_topic"`
	FragmentGroup   string   `yaml:"fragment_group"`
	CompletionTopic string   `yaml:"completion_topic"`
}

func defaultConfig() Config {
	return Config{
		GRPCAddr:         ":50051",
		EntryWALDir:      "./wal_entry",
		SegmentSize:      2 * 1024 * 1024,
		SegmentDuration:  Duration(time.Minute),
		OutboxDir:        "./wal_exit",
		SnapshotDir:      "./snapshots",
		Capacity:         64,
		Lanes:            8,
		AllocWidth:       4,
		MergeWidth:       4,
		ReleaseWidth:     4,
		EngineTick:       Duration(time.Millisecond),
		SnapshotInterval: Duration(30 * time.Second),
		EpochInterval:    Duration(2 * time.Second),
		KafkaBrokers:     []string{"localhost:9092"},
		FragmentTopic:    "fragments",
		FragmentGroup:    "skuld-engine",
		CompletionTopic:  "completions",
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path,
// if any. Unknown keys are rejected so typos fail loudly at boot.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // reject unknown fields
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Capacity <= 0 || c.Capacity&(c.Capacity-1) != 0 {
		return fmt.Errorf("capacity %d must be a power of two", c.Capacity)
	}
	if c.Lanes < 1 || c.Lanes > 64 {
		return fmt.Errorf("lanes %d must be in 1..64", c.Lanes)
	}
	if c.AllocWidth < 1 || c.MergeWidth < 1 || c.ReleaseWidth < 1 {
		return fmt.Errorf("port widths must be positive")
	}
	if c.EngineTick <= 0 || c.SnapshotInterval <= 0 || c.EpochInterval <= 0 {
		return fmt.Errorf("intervals must be positive")
	}
	return nil
}
