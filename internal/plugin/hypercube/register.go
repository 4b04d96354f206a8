package hypercube

import (
	"github.com/Faultbox/tesseract/internal/host"
	"github.com/Faultbox/tesseract/internal/pluginapi"
)

func init() {
	host.Register(Name, func(api pluginapi.API) pluginapi.Plugin {
		return New(api)
	})
}
