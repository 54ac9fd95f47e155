package book

// Action phân loại operations cho ownership policy
type Action string

const (
	ActionRetrieve Action = "retrieve"
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// IsWrite - chỉ update/delete bị giới hạn theo owner
func (a Action) IsWrite() bool {
	return a == ActionUpdate || a == ActionDelete
}

// Authorize là pure decision function cho ownership policy.
// Reads (retrieve/list) và create: mọi authenticated requester đều được phép
// (ownership của create được stamp lúc tạo, không check resource có sẵn).
// Writes (update/delete): chỉ owning profile; requester không có profile → deny.
func Authorize(action Action, requesterProfileID *int64, resource *Book) bool {
	if !action.IsWrite() {
		return true
	}

	if requesterProfileID == nil || resource == nil {
		return false
	}

	return *requesterProfileID == resource.ProfileID
}

// ListScope quyết định list trả về books của ai.
// Reference behavior trả về TẤT CẢ books bất kể requester; giữ configurable
// thay vì assume một phía.
type ListScope string

const (
	ScopeAll ListScope = "all"
	ScopeOwn ListScope = "own"
)

// OwnerFilter trả về profile id để filter list query, nil = không filter
func (s ListScope) OwnerFilter(requesterProfileID *int64) *int64 {
	if s == ScopeOwn {
		return requesterProfileID
	}
	return nil
}
