package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"sdcalc/config"

	"github.com/cheggaaa/pb"
	"github.com/minio/mc/pkg/probe"
	"github.com/minio/pkg/console"
)

// CauseMessage container for golang error messages
type CauseMessage struct {
	Message string `json:"message"`
	Error   error  `json:"error"`
}

// ErrorMessage container for error messages
type ErrorMessage struct {
	Message   string             `json:"message"`
	Cause     CauseMessage       `json:"cause"`
	Type      string             `json:"type"`
	CallTrace []probe.TracePoint `json:"trace,omitempty"`
	SysInfo   map[string]string  `json:"sysinfo"`
}

var PrintMu sync.Mutex

// clearLine blanks the current terminal line, if there is a terminal.
func clearLine() {
	if w, _ := pb.GetTerminalWidth(); w > 0 {
		fmt.Print("\r", strings.Repeat(" ", w), "\r")
	}
}

func PrintInfo(data ...interface{}) {
	PrintMu.Lock()
	defer PrintMu.Unlock()
	clearLine()
	console.Infoln(data...)
}

func PrintError(data ...interface{}) {
	PrintMu.Lock()
	defer PrintMu.Unlock()
	clearLine()
	console.Errorln(data...)
}

func errorEnvelope(err *probe.Error, msg, typ string) string {
	errorMsg := ErrorMessage{
		Message: msg,
		Type:    typ,
		Cause: CauseMessage{
			Message: err.ToGoError().Error(),
			Error:   err.ToGoError(),
		},
		SysInfo: err.SysInfo,
	}
	if config.GlobalDebug {
		errorMsg.CallTrace = err.CallTrace
	}
	b, e := json.MarshalIndent(struct {
		Status string       `json:"status"`
		Error  ErrorMessage `json:"error"`
	}{
		Status: "error",
		Error:  errorMsg,
	}, "", " ")
	if e != nil {
		console.Fatalln(probe.NewError(e))
	}
	return string(b)
}

// FatalIf wrapper function which takes error and selectively prints stack frames if available on debug
func FatalIf(err *probe.Error, msg string, data ...interface{}) {
	if err == nil {
		return
	}
	Fatal(err, msg, data...)
}

func Fatal(err *probe.Error, msg string, data ...interface{}) {
	msg = fmt.Sprintf(msg, data...)
	Logger.Errorf("%s %v", msg, err.ToGoError())
	Sync()

	if config.GlobalJSON {
		console.Infoln(errorEnvelope(err, msg, "fatal"))
		console.Fatalln()
	}

	console.Fatalln(joinMessage(msg, err))
}

// joinMessage glues the generic message and the detailed error together with
// the right punctuation.
func joinMessage(msg string, err *probe.Error) string {
	errmsg := err.String()
	if !config.GlobalDebug {
		errmsg = err.ToGoError().Error()
	}

	msg = strings.TrimSpace(msg)
	errmsg = strings.TrimSpace(errmsg)

	if len(errmsg) > 0 && len(msg) > 0 {
		if msg[len(msg)-1] != ':' && msg[len(msg)-1] != '.' {
			// The detailed error message starts with a capital letter,
			// we should then add '.', otherwise add ':'.
			if unicode.IsUpper(rune(errmsg[0])) {
				msg += "."
			} else {
				msg += ":"
			}
		}
		if errmsg[len(errmsg)-1] != '.' {
			errmsg += "."
		}
	}
	return fmt.Sprintf("%s %s", msg, errmsg)
}

// ErrorIf synonymous with fatalIf but doesn't exit on error != nil
func ErrorIf(err *probe.Error, msg string, data ...interface{}) {
	if err == nil {
		return
	}
	msg = fmt.Sprintf(msg, data...)
	Logger.Errorf("%s %v", msg, err.ToGoError())
	if config.GlobalJSON {
		console.Infoln(errorEnvelope(err, msg, "error"))
		return
	}
	if !config.GlobalDebug {
		PrintError(fmt.Sprintf("%s %s", msg, err.ToGoError()))
		return
	}
	PrintError(fmt.Sprintf("%s %s", msg, err))
}
