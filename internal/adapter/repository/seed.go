package repository

import (
	"context"
	"time"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	"servilink/internal/infrastructure/auth"
	"servilink/pkg/logger"
)

// SeedPassword is the password every demo account authenticates with.
const SeedPassword = "servilink123"

// SeedDemoData loads the demo marketplace into an empty store: two
// customers, one worker with two ratings, and a short conversation
// between customer 1 and worker 2. It is a no-op when any user
// already exists.
func SeedDemoData(ctx context.Context, users repository.UserRepository, ratings repository.RatingRepository, chats repository.ChatRepository) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(SeedPassword)
	if err != nil {
		return err
	}

	demoUsers := []*entity.User{
		{
			ID:              "1",
			Name:            "John Doe",
			Email:           "user@example.com",
			PasswordHash:    hash,
			Role:            entity.RoleCustomer,
			ProfileComplete: true,
			Location:        "New York, NY",
		},
		{
			ID:              "2",
			Name:            "Jane Smith",
			Email:           "worker@example.com",
			PasswordHash:    hash,
			Role:            entity.RoleWorker,
			ProfileComplete: true,
			ProfilePicture:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&q=80",
			Location:        "Brooklyn, NY",
			Skills:          []string{"Plumbing", "Electrical", "Painting"},
			AverageRating:   4.5,
			RatingCount:     2,
		},
		{
			ID:              "3",
			Name:            "Maria Silva",
			Email:           "maria@example.com",
			PasswordHash:    hash,
			Role:            entity.RoleCustomer,
			ProfileComplete: true,
			ProfilePicture:  "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=300&h=300&q=80",
		},
	}
	for _, user := range demoUsers {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}

	demoRatings := []*entity.Rating{
		{
			ID:           "1",
			WorkerID:     "2",
			CustomerID:   "1",
			ServiceID:    "3",
			Stars:        5,
			Comment:      "Excelente trabalho, muito profissional e pontual!",
			Date:         time.Date(2023, 5, 30, 14, 30, 0, 0, time.UTC),
			CustomerName: "John Doe",
		},
		{
			ID:             "2",
			WorkerID:       "2",
			CustomerID:     "3",
			ServiceID:      "5",
			Stars:          4,
			Comment:        "Ótimo serviço, recomendo!",
			Date:           time.Date(2023, 6, 15, 10, 15, 0, 0, time.UTC),
			CustomerName:   "Maria Silva",
			CustomerAvatar: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=300&h=300&q=80",
		},
	}
	for _, rating := range demoRatings {
		if err := ratings.Create(ctx, rating); err != nil {
			return err
		}
	}

	if err := chats.Create(ctx, &entity.Chat{
		ID:             "chat1",
		ParticipantIDs: []string{"1", "2"},
	}); err != nil {
		return err
	}

	demoMessages := []*entity.Message{
		{
			ID:         "1",
			SenderID:   "1",
			ReceiverID: "2",
			Content:    "Olá, tenho interesse no seu serviço de encanamento. Está disponível na próxima semana?",
			Timestamp:  time.Date(2023, 6, 10, 9, 30, 0, 0, time.UTC),
			Read:       true,
		},
		{
			ID:         "2",
			SenderID:   "2",
			ReceiverID: "1",
			Content:    "Olá! Sim, estou disponível na terça e quinta-feira. Qual seria o problema?",
			Timestamp:  time.Date(2023, 6, 10, 10, 15, 0, 0, time.UTC),
			Read:       true,
		},
		{
			ID:         "3",
			SenderID:   "1",
			ReceiverID: "2",
			Content:    "Tenho um vazamento embaixo da pia da cozinha. Terça-feira às 14h seria bom para você?",
			Timestamp:  time.Date(2023, 6, 10, 10, 45, 0, 0, time.UTC),
			Read:       true,
		},
		{
			ID:         "4",
			SenderID:   "2",
			ReceiverID: "1",
			Content:    "Perfeito! Confirmo para terça às 14h. Poderia me enviar o endereço completo?",
			Timestamp:  time.Date(2023, 6, 10, 11, 0, 0, 0, time.UTC),
			Read:       false,
		},
	}
	for _, message := range demoMessages {
		if err := chats.CreateMessage(ctx, message); err != nil {
			return err
		}
	}

	logger.Info("Seeded demo data: %d users, %d ratings, %d messages", len(demoUsers), len(demoRatings), len(demoMessages))
	return nil
}
