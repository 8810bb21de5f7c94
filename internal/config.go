package internal

import (
	"fmt"
	"strings"
	"time"
)

// Config is the relay configuration, read from the environment with go-env.
type Config struct {
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=8080"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,default=256"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=1024"`
	RelayLanes      int           `env:"RELAY_LANES,default=4"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	LogoutTimeout   time.Duration `env:"LOGOUT_TIMEOUT,default=5s"`
	DomainTimeout   time.Duration `env:"DOMAIN_TIMEOUT,default=5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s"`
	BacklogLimit    int           `env:"BACKLOG_LIMIT,default=50"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CensoredDir     string        `env:"CENSORED_DIR"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	SeedChannels    bool          `env:"SEED_CHANNELS,default=true"`
	PeerName        string        `env:"PEER_NAME,default=local"`
	PeerAddress     string        `env:"PEER_ADDRESS,default=localhost"`
	PeerPort        int           `env:"PEER_PORT,default=8080"`
	InspectPort     int           `env:"INSPECT_PORT,default=8081"`
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Words splits CENSORED_WORDS into a list, dropping blanks.
func (c Config) Words() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
