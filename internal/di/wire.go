//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"profnet/internal/config"
	"profnet/internal/messaging/repository"
	"profnet/internal/messaging/service"
	"profnet/internal/network"
	"profnet/internal/user"
)

type Core struct {
	Users    user.UserService
	Friends  network.FriendService
	Messages service.MessageService
}

func InitializeCore(cfg *config.Config, db *gorm.DB) *Core {
	wire.Build(
		user.NewUserRepository,
		user.NewProfileRepository,
		provideUserService,
		network.NewConnectionRepository,
		network.NewFriendRequestRepository,
		network.NewFriendService,
		provideGraph,
		provideNewAccountFunc,
		provideGate,
		repository.NewMessageRepository,
		service.NewMessageService,
		wire.Struct(new(Core), "*"),
	)
	return &Core{}
}

func provideUserService(repo user.UserRepository, profiles user.ProfileRepository, cfg *config.Config) user.UserService {
	return user.NewUserService(repo, profiles, cfg.Messaging.NewAccountDays)
}

func provideGraph(conns network.ConnectionRepository) network.DistanceQuerier {
	return network.NewGraph(conns)
}

func provideNewAccountFunc(users user.UserService) service.NewAccountFunc {
	return users.IsNewAccount
}

func provideGate(graph network.DistanceQuerier, isNew service.NewAccountFunc, cfg *config.Config) service.AuthorizationGate {
	return service.NewAuthorizationGate(graph, isNew, cfg.Messaging)
}
