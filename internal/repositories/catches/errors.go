package catches

import (
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const (
	errRecordNil   = "catch record cannot be nil"
	errOwnerEmpty  = "owner cannot be empty"
	errInstanceID0 = "instance ID must be positive"
)

func validateKey(owner string, instanceID uint64) error {
	if owner == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if instanceID == 0 {
		return errors.InvalidArgument(errInstanceID0)
	}
	return nil
}

func validateRecord(rec *entities.CatchRecord) error {
	if rec == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	return validateKey(rec.Owner, rec.InstanceID)
}

func catchNotFound(owner string, instanceID uint64) error {
	return errors.Reasonedf(errors.CodeNotFound, entities.ReasonCatchNotFound,
		"player %s has no catch with instance %d", owner, instanceID)
}

func catchExists(owner string, instanceID uint64) error {
	return errors.AlreadyExistsf("player %s already has a catch with instance %d", owner, instanceID)
}
