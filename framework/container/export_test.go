package container

// CacheLen exposes the number of scope cache cells of c to tests.
func CacheLen(c *Component) int { return c.cache.Len() }
