package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagPid      = "pid"
	TagStatus   = "status"
	TagLatency  = "latency"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagUser     = "user"
	RequestID   = "requestId"
	maxBodySize = 4096
)

const localsRequestID = "requestid"

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag resolves the value of a single log field.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.Is("json") {
				return truncate(c.Body())
			}
			return ""
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.Response().StatusCode() >= fiber.StatusBadRequest {
				return truncate(c.Response().Body())
			}
			return ""
		},
		TagUser: func(c *fiber.Ctx, _ *data) interface{} {
			if v, ok := c.Locals(LocalsUserID).(string); ok {
				return v
			}
			return ""
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if v, ok := c.Locals(localsRequestID).(string); ok {
				return v
			}
			id := c.Get(fiber.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Locals(localsRequestID, id)
			return id
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}

// LocalsUserID is the fiber locals key the auth middleware stores the caller id under.
const LocalsUserID = "userID"

func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}
