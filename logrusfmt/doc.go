// Package logrusfmt plugs the JSON record formatter into logrus.
//
// Formatter implements logrus.Formatter, so it can be installed with
// logger.SetFormatter and from then on every logrus entry is rendered
// through the shared field-selection, collision and coercion rules of
// the formatter package:
//
//	log := logrus.New()
//	log.SetFormatter(logrusfmt.New("my_app", formatter.Config{}))
//	log.WithField("porta", 8080).Info("serviço iniciado")
//
// logrus hands over its context as an unordered map, so data keys are
// sorted before merging to keep the output deterministic. A value
// stored under logrus.ErrorKey that implements error is promoted to
// the structured exception object instead of a plain extra field.
package logrusfmt
