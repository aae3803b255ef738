// Package zapfmt plugs the JSON record formatter into zap.
//
// Core implements zapcore.Core, so a zap.Logger can be built directly
// on top of the formatter:
//
//	core := zapfmt.NewCore(formatter.Config{}, zapcore.AddSync(os.Stdout), zap.InfoLevel)
//	log := zap.New(core, zap.AddCaller())
//	log.Info("serviço iniciado", zap.Int("porta", 8080))
//
// Zap fields are converted through zapcore's map object encoder and
// read back in field order, so extras keep their call-site order. An
// entry stack trace is split into frames and emitted as the record's
// stack array.
package zapfmt
