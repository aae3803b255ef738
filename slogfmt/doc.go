// Package slogfmt plugs the JSON record formatter into log/slog.
//
// Handler implements slog.Handler: it converts each slog.Record into a
// formatter record (attrs become extra fields, group names become key
// prefixes, the record's pc becomes the source location) and writes
// one rendered line to a caller-owned io.Writer:
//
//	log := slog.New(slogfmt.NewHandler(os.Stdout, formatter.Config{}, nil))
//	log.Info("serviço iniciado", "porta", 8080)
//
// Writes are serialized with a mutex shared across WithAttrs and
// WithGroup clones, so one handler tree can safely back many
// goroutines.
package slogfmt
