package app

import (
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// eventLogger routes fx lifecycle events to zerolog at debug level.
type eventLogger struct{}

func (eventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Supplied:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("type", e.TypeName).Msg("fx supply failed")
			return
		}
		log.Debug().Str("type", e.TypeName).Msg("fx supplied")
	case *fxevent.Provided:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("constructor", e.ConstructorName).Msg("fx provide failed")
			return
		}
		log.Debug().Str("constructor", e.ConstructorName).Strs("types", e.OutputTypeNames).Msg("fx provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			log.Debug().Err(e.Err).Str("function", e.FunctionName).Msg("fx invoke failed")
			return
		}
		log.Debug().Str("function", e.FunctionName).Msg("fx invoked")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			log.Error().Err(e.Err).Msg("fx logger init failed")
		}
	}
}
