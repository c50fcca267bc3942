package config

const (
	defaultConfigPath     = "~/.config/reelprep/config.toml"
	projectConfigName     = "reelprep.toml"
	dotEnvFile            = ".env"
	defaultMaxWords       = 12
	defaultSubtitleName   = "subtitles.srt"
	defaultImageFormat    = "png"
	defaultAudioPrefix    = "audio_"
	defaultAudioExtension = ".mp3"
	defaultFFprobeBinary  = "ffprobe"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	envLogLevel           = "REELPREP_LOG_LEVEL"
	envLogFormat          = "REELPREP_LOG_FORMAT"
	envFFprobeBinary      = "REELPREP_FFPROBE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Subtitles: Subtitles{
			MaxWords:   defaultMaxWords,
			OutputName: defaultSubtitleName,
		},
		Images: Images{
			Format: defaultImageFormat,
		},
		Audio: Audio{
			Prefix:     defaultAudioPrefix,
			Extensions: []string{defaultAudioExtension},
		},
		Media: Media{
			FFprobeBinary: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
