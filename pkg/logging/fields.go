package logging

import "github.com/sirupsen/logrus"

// FlowFields builds the base fields shared by restore and save log lines.
func FlowFields(flow, key, root string) logrus.Fields {
	return logrus.Fields{
		"flow": flow,
		"key":  key,
		"root": root,
	}
}

// StreamFields builds the fields attached to forwarded subprocess output.
func StreamFields(command, stream string) logrus.Fields {
	return logrus.Fields{
		"command": command,
		"stream":  stream,
	}
}
