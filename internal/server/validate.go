package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/types"
)

var registerOnce sync.Once

// registerValidators adds the codeintel tags to gin's validator engine.
// gin shares one engine per process, so this runs once.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn("binding engine is not go-playground/validator; custom tags unavailable")
			return
		}
		mustRegister(v, "indicatorkind", func(fl validator.FieldLevel) bool {
			_, ok := types.ParseIndicatorKind(fl.Field().String())
			return ok
		})
		mustRegister(v, "iconcolor", func(fl validator.FieldLevel) bool {
			return icon.Color(fl.Field().String()).IsHex()
		})
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// bindingMessage turns a query binding error into a short client message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "indicatorkind":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q: must be one of badge, alert, legacy", field, fe.Value()))
		case "iconcolor":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q: must be a hex color like #ffffff", field, fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q: must be one of %s", field, fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s: failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
