package cmd

import (
	"flag"

	"github.com/etnz/hledger/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of hl: one sub command per
// registered command, with the flags each command declares.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.journal"),
			"v": predict.Nothing,
		},
	}

	var names predict.Set
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = flagPredictor(f) })
		root.Sub[c.Name()] = sub
		names = append(names, c.Name())
	}

	root.Sub["fmt"].Args = predict.Files("*.journal")
	root.Sub["prices"].Args = predict.Files("*.journal")
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	root.Sub["help"] = &complete.Command{Args: names}
	return root
}

// flagPredictor predicts nothing after a boolean flag, and anything otherwise.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
