package intrusive

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger sets the logger used for diagnostics such as releasing a node
// that is still linked. A nil logger restores the logrus standard logger.
//
// SetLogger must not be called concurrently with list operations.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}
