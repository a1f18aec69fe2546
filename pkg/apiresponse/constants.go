package apiresponse

// Translation keys of the envelope message.
const (
	MsgTasksRetrieved      = "tasksRetrieved"
	MsgTaskRetrieved       = "taskRetrieved"
	MsgTaskCreated         = "taskCreated"
	MsgTaskUpdated         = "taskUpdated"
	MsgTaskDeleted         = "taskDeleted"
	MsgTaskCompleted       = "taskCompleted"
	MsgTaskNotFound        = "taskNotFound"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgFailListTasks       = "failListTasks"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailCompleteTask    = "failCompleteTask"
	MsgCategoriesRetrieved = "categoriesRetrieved"
	MsgCategoryCreated     = "categoryCreated"
	MsgInvalidCategory     = "invalidCategoryPayload"
	MsgFailListCategories  = "failListCategories"
	MsgFailCreateCategory  = "failCreateCategory"
	MsgFailResolveUser     = "failResolveUser"
	MsgHealthy             = "healthy"
)
