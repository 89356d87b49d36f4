package report

import (
	"reflect"
	"strconv"
	"strings"

	"sdcalc/pkg/calc"
	"sdcalc/pkg/logger"
)

// foreachStruct logs every exported field of obj by its json tag.
// obj must be a struct value, not a pointer.
func foreachStruct(obj interface{}) {
	max := 22
	t := reflect.TypeOf(obj)
	v := reflect.ValueOf(obj)
	for k := 0; k < t.NumField(); k++ {
		tag := strings.Split(t.Field(k).Tag.Get("json"), ",")[0]
		switch tag {
		case "", "-", "stream":
			continue
		default:
			logger.Logger.Infof("%-"+strconv.Itoa(max)+"s\t: %v", tag, v.Field(k).Interface())
		}
	}
}

// LogSummary writes the report to the log as key/value lines.
func LogSummary(rep *calc.Report) {
	fmtStr := strings.Repeat("=", 20)
	logger.Logger.Infof("%s parameters %s", fmtStr, fmtStr)
	foreachStruct(rep.Params)

	for _, r := range rep.Streams {
		logger.Logger.Infof("%s stream %q %s", fmtStr, r.Stream.Name, fmtStr)
		foreachStruct(r.Stream)
		foreachStruct(r)
	}

	logger.Logger.Infof("%s totals %s", fmtStr, fmtStr)
	foreachStruct(rep.Aggregate)
	foreachStruct(rep.Endurance)
	foreachStruct(rep.Recommendation)

	for _, row := range rep.RetentionTable {
		logger.Logger.Infof("card %5d GB\t: %s hours", row.CardGB, row.Retention)
	}
}
