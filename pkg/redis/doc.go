// Package redis connects to the Redis server that backs the shared toast
// event stream.
//
// Redis is optional. When REDIS_URL is empty the desk streams toast events
// from memory and only sees toasts presented by its own process.
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	r.Get("/readyz", httpserver.Readiness(redis.Healthcheck(client)))
package redis
