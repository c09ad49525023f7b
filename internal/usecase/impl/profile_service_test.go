package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	mockRepo "sheshape/internal/mocks/repository"
	mockSvc "sheshape/internal/mocks/service"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
	storage     *mockSvc.MockFileStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewProfileService(txManager, storage, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return profileServiceFixtures{
		service:     svc,
		txManager:   txManager,
		factory:     factory,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
	}
}

func TestProfileService_SetupProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "client@example.com"}

	height := decimal.NewFromInt(170)
	freq := 4
	input := &usecase.ProfileSetupInput{
		FirstName:        "Aline",
		LastName:         "Uwase",
		HeightCm:         &height,
		FitnessLevel:     "BEGINNER",
		PrimaryGoal:      "WEIGHT_LOSS",
		WorkoutFrequency: &freq,
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.profileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	fx.profileRepo.EXPECT().SavePhysicalAttributes(ctx, mock.AnythingOfType("*entity.PhysicalAttributes")).Return(nil)
	fx.profileRepo.EXPECT().SaveFitnessProfile(ctx, mock.AnythingOfType("*entity.FitnessProfile")).Return(nil)
	fx.profileRepo.EXPECT().SaveUserPreferences(ctx, mock.AnythingOfType("*entity.UserPreferences")).Return(nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	// View assembly after setup
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, FirstName: "Aline", LastName: "Uwase"}, nil)
	fx.profileRepo.EXPECT().FindPhysicalAttributes(ctx, userID).
		Return(&entity.PhysicalAttributes{UserID: userID, HeightCm: &height}, nil)
	fx.profileRepo.EXPECT().FindFitnessProfile(ctx, userID).
		Return(&entity.FitnessProfile{UserID: userID, FitnessLevel: "BEGINNER"}, nil)
	fx.profileRepo.EXPECT().FindHealthInformation(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindUserPreferences(ctx, userID).
		Return(&entity.UserPreferences{UserID: userID, Timezone: "UTC"}, nil)

	view, err := fx.service.SetupProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, user.ProfileCompleted)
	assert.True(t, view.ProfileCompleted)
	assert.Equal(t, "Aline", view.FirstName)
	assert.NotNil(t, view.PhysicalAttributes)
	assert.NotNil(t, view.FitnessProfile)
	assert.Nil(t, view.HealthInformation)
}

func TestProfileService_SetupProfile_AlreadyCompleted(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, ProfileCompleted: true}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	_, err := fx.service.SetupProfile(ctx, userID, &usecase.ProfileSetupInput{
		FirstName: "Aline",
		LastName:  "Uwase",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyCompleted))
}

func TestProfileService_UpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, ProfileCompleted: true}

	existing := &entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		FirstName:   "Aline",
		LastName:    "Uwase",
		PhoneNumber: "+250780000000",
	}

	newPhone := "+250781111111"
	input := &usecase.ProfileUpdateInput{PhoneNumber: &newPhone}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	var saved *entity.Profile
	fx.profileRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			saved = profile
		}).
		Return(nil)

	// View assembly
	fx.profileRepo.EXPECT().FindPhysicalAttributes(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindFitnessProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindHealthInformation(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindUserPreferences(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, newPhone, saved.PhoneNumber)
	assert.Equal(t, "Aline", saved.FirstName)
	assert.Equal(t, "Uwase", saved.LastName)
}

func TestProfileService_UpdateProfile_CreatesMissingExtensionRecord(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	weight := decimal.NewFromInt(72)
	input := &usecase.ProfileUpdateInput{CurrentWeightKg: &weight}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileRepo.EXPECT().FindPhysicalAttributes(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	var saved *entity.PhysicalAttributes
	fx.profileRepo.EXPECT().
		SavePhysicalAttributes(ctx, mock.AnythingOfType("*entity.PhysicalAttributes")).
		Run(func(_ context.Context, attrs *entity.PhysicalAttributes) {
			saved = attrs
		}).
		Return(nil)

	// View assembly
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindPhysicalAttributes(ctx, userID).
		Return(&entity.PhysicalAttributes{UserID: userID, CurrentWeightKg: &weight}, nil)
	fx.profileRepo.EXPECT().FindFitnessProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindHealthInformation(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().FindUserPreferences(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	view, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	require.NotNil(t, saved.CurrentWeightKg)
	assert.True(t, saved.CurrentWeightKg.Equal(weight))
	assert.NotNil(t, view.PhysicalAttributes)
}

func TestProfileService_GetProfileSummary(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, ProfileCompleted: true}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, FirstName: "Aline", LastName: "Uwase"}, nil)
	fx.profileRepo.EXPECT().FindFitnessProfile(ctx, userID).
		Return(&entity.FitnessProfile{UserID: userID, FitnessLevel: "INTERMEDIATE", PrimaryGoal: "STRENGTH"}, nil)

	summary, err := fx.service.GetProfileSummary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Aline", summary.FirstName)
	assert.Equal(t, "INTERMEDIATE", summary.FitnessLevel)
	assert.True(t, summary.ProfileCompleted)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UploadProfilePicture_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := strings.NewReader("fake image bytes")
	upload := &usecase.PictureUpload{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Size:        16,
		Content:     content,
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", content).
		Return("https://cdn.example.com/profiles/new.png", nil)

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Profile{ID: uuid.New(), UserID: userID, ProfilePictureURL: "https://cdn.example.com/profiles/old.png"}, nil)
	fx.profileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "https://cdn.example.com/profiles/old.png").Return(nil)

	view, err := fx.service.UploadProfilePicture(ctx, userID, upload)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profiles/new.png", view.ProfilePictureURL)
	assert.Equal(t, "avatar.png", view.FileName)
}

func TestProfileService_DeleteProfilePicture_RemovesBlobAndClearsURL(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		ID:                uuid.New(),
		UserID:            userID,
		ProfilePictureURL: "https://cdn.example.com/profiles/old.png",
	}

	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	fx.profileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).
		RunAndReturn(func(_ context.Context, saved *entity.Profile) error {
			assert.Empty(t, saved.ProfilePictureURL)

			return nil
		})
	fx.storage.EXPECT().Delete(ctx, "https://cdn.example.com/profiles/old.png").Return(nil)

	err := fx.service.DeleteProfilePicture(ctx, userID)

	require.NoError(t, err)
}

func TestProfileService_DeleteProfilePicture_NoPictureIsNoop(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: uuid.New(), UserID: userID}

	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	err := fx.service.DeleteProfilePicture(ctx, userID)

	require.NoError(t, err)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_UploadProfilePicture_RejectsInvalidFiles(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name   string
		upload *usecase.PictureUpload
	}{
		{"empty file", &usecase.PictureUpload{Filename: "a.png", ContentType: "image/png", Size: 0}},
		{"not an image", &usecase.PictureUpload{Filename: "a.pdf", ContentType: "application/pdf", Size: 100}},
		{"too large", &usecase.PictureUpload{Filename: "a.png", ContentType: "image/png", Size: 6 << 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.UploadProfilePicture(ctx, userID, tt.upload)

			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidFile))
		})
	}
}
