package outbox

const topic = "notifications_to_forward"
