// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Shell completion via github.com/posener/complete.

// Completion returns a completion command for the spec: option names
// complete under every accepted spelling, list options complete their
// allowed values, and path-typed options complete directories or
// files. Main consults it automatically; programs with their own entry
// point can call Complete on the returned command themselves.
func (sp *Spec) Completion() *complete.Command {
	flags := map[string]complete.Predictor{}
	for _, o := range sp.opts {
		p := o.predictor()
		flags[o.primary] = p
		if o.synonym != "" {
			flags[o.synonym] = p
		}
	}
	return &complete.Command{
		Flags: flags,
		Args:  predict.Something,
	}
}

func (o *option) predictor() complete.Predictor {
	switch o.typ {
	case typeChoice:
		return predict.Set(o.allowedOrder)
	case typeDir, typeDirList:
		return predict.Dirs("*")
	case typeFile, typeFileList, typeFilePath:
		return predict.Files("*")
	case typeFlag:
		return predict.Nothing
	}
	return predict.Something
}
