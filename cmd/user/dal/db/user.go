package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
)

// GetUserById returns nil without error when the account does not exist.
func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Limit(1).Find(&users).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.GetUserById failed")
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "dal.CheckUserExistById failed")
	}
	return count > 0, nil
}

// MGetUsers loads a batch of accounts keyed by id; unknown ids are absent.
func MGetUsers(ctx context.Context, userIds []int64) (map[int64]*model.User, error) {
	res := make(map[int64]*model.User, len(userIds))
	if len(userIds) == 0 {
		return res, nil
	}
	var users []*model.User
	if err := DB.WithContext(ctx).Where("user_id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.WithMessage(err, "dal.MGetUsers failed")
	}
	for _, u := range users {
		res[u.UserId] = u
	}
	return res, nil
}
