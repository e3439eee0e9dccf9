package di

// ServiceStatus reports, per announced grpc service name, whether its
// backing service came out of the injector. The health endpoint serves
// these verdicts.
func (c *Core) ServiceStatus() map[string]bool {
	return map[string]bool{
		"profnet.v1.UserService":      c.Users != nil,
		"profnet.v1.NetworkService":   c.Friends != nil,
		"profnet.v1.MessagingService": c.Messages != nil,
	}
}
