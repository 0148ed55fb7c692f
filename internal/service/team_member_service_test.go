package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/mocks"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamMemberService(t *testing.T) {
	fields := domain.TeamMemberFields{
		Name:       "Bob",
		Email:      "bob@x.io",
		Role:       "designer",
		MemberType: domain.MemberTypeFreelancer,
	}

	t.Run("успешное создание", func(t *testing.T) {
		mockRepo := new(mocks.MockTeamMemberRepository)
		service := NewTeamMemberService(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TeamMember")).Return(nil).Once()

		result, err := service.Create(context.Background(), testOwner, fields)

		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, domain.MemberTypeFreelancer, result.MemberType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ошибка: неизвестный тип участника", func(t *testing.T) {
		mockRepo := new(mocks.MockTeamMemberRepository)
		service := NewTeamMemberService(mockRepo)

		bad := fields
		bad.MemberType = "contractor"
		_, err := service.Create(context.Background(), testOwner, bad)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ошибка: участник не найден", func(t *testing.T) {
		mockRepo := new(mocks.MockTeamMemberRepository)
		service := NewTeamMemberService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testOwner, "m1").Return(nil, repository.ErrNotFound).Once()

		_, err := service.Get(context.Background(), testOwner, "m1")

		require.Error(t, err)
		assert.Equal(t, "Team member not found", err.Error())
	})

	t.Run("удаление несуществующего участника", func(t *testing.T) {
		mockRepo := new(mocks.MockTeamMemberRepository)
		service := NewTeamMemberService(mockRepo)

		mockRepo.On("Delete", mock.Anything, testOwner, "m1").Return(repository.ErrNotFound).Once()

		err := service.Delete(context.Background(), testOwner, "m1")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
